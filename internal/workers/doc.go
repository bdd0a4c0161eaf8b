// Package workers provides utilities for sizing worker pools in
// containerized environments.
//
// runtime.NumCPU reports the host machine's CPU count even when a cgroup
// limit caps the process at fewer cores. Go 1.19+ sets GOMAXPROCS from the
// container CPU limit, so the helpers here derive worker counts from
// runtime.GOMAXPROCS(0) instead:
//
//	// One worker per available CPU, at most 8 (transcode fan-out)
//	n := workers.ForCPU(8)
//
// All helpers honor the GALLERY_WORKERS environment variable as a manual
// override, which is useful when tuning a deployment without rebuilding.
package workers
