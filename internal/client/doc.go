// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client for the events REST
// server.
//
// A single invocation runs one command (for example "events" or
// "location 3") through an [adapter.EventsAdapter] and prints the decoded
// records as indented JSON. The iCalendar feed and the server version are
// printed verbatim.
package client
