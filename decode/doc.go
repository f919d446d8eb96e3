// Package decode provides stdinarg.ParseFunc factories for structured
// argument content: JSON documents and HCL configuration bodies.
package decode
