// Package cpu reports the parallelism actually available to the process and
// optionally pins worker threads to cores so timing runs are less exposed to
// scheduler migration noise.
package cpu

// Available returns the number of logical CPUs this process may run on.
// On Linux it honors the scheduling affinity mask (taskset, cgroups);
// other platforms fall back to runtime.NumCPU. Never less than 1.
func Available() int {
	return max(1, available())
}
