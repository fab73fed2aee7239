package common

// UnknownStr is the rendering of an enum value outside its range.
const UnknownStr = "unknown"
