// Package sitechat provides a command-line chatbot that answers questions
// about a single website. It scrapes the page text once, then forwards each
// question together with that text to a remote text-generation endpoint,
// caching answers briefly to avoid redundant calls.
//
// This package contains domain types, interfaces and pure functions following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., huggingface/,
// goquery/, rod/).
package sitechat
