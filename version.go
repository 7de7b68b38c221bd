package constorm

// Version is the release of this module. Builds may override it with -ldflags.
var Version = "0.1.0"
