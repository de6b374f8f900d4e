// Package sitelog provides the site's leveled console logger: a small,
// immutable logger value backed by rs/zerolog that writes prefixed lines
// to per-level sinks and filters by a minimum severity.
//
// Key features
//   - Three severities ordered error > warning > info; error always emits
//   - Lines are rendered as "[prefix] message" with no timestamps or colour
//   - Minimum level resolved once at construction: explicit, then the
//     LOG_LEVEL environment variable, then loaded settings, then info
//   - Optional JSON telemetry sink with lumberjack rotation; error causes
//     are enriched with their full chain (outermost -> root)
//   - SafeExecute for the catch, log and fall back convention
//
// Typical usage
//
//	log := sitelog.New(sitelog.Options{Prefix: "DOM"})
//	log.Warn("selector matched nothing")
//	log.Error("failed to query selector", err)
//
// Hosts that need file logging or injected writers run their own Service:
//
//	svc := &sitelog.Service{WorkingDir: wd, Settings: settings}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//	log := svc.New(sitelog.Options{Prefix: "Build", MinLevel: sitelog.WarningLevel})
package sitelog
