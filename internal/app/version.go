package app

// Version is stamped at build time via -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"
