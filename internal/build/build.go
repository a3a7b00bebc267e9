package build

// Version is overridden at link time: -ldflags "-X github.com/simple-container-com/pg-init/internal/build.Version=..."
var Version = "0.0.0-dev"
