// Package foobar runs two chained lookups over a sequence of Foos. A Foo may
// hold a Bar, and a Bar is only valid when its text is exactly "bar".
//
// LookupAll collects every text or stops at the first failure; LookupEach
// keeps one result per Foo.
package foobar
