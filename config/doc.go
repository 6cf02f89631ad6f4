// Package config holds the start-up configuration of the exceptions runtime.
//
// The runtime is sized once, before any protected block runs: the maximum
// nesting depth of protected blocks, the capacity of the current-error
// message buffer, and whether raised errors record the file and line they
// were raised at.
//
// Configuration can be built in code:
//
//	cfg := config.Default()
//	cfg.MaxFrames = 32
//	if err := config.Validate(ctx, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// or read from a YAML document on any core.ReadFS filesystem:
//
//	cfg, err := config.Load(ctx, billy.NewLocal(), "exceptions.yaml")
//
// Omitted fields keep their defaults and unknown fields are rejected. Every
// configuration is checked against an embedded CUE schema; failures come back
// as errors.PlatformError with CodeInvalidConfig or CodeConfigLoad.
package config
