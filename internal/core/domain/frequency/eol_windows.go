//go:build windows

package frequency

// NativeEOL is the line terminator of the platform the binary was built for.
const NativeEOL = "\r\n"
