package bind

// Add returns a+b with uint32 wraparound. It gives a host embedding an
// arithmetic round trip to verify the binding itself before exercising the
// cipher surface.
func Add(a, b uint32) uint32 { return a + b }

// Probe is a no-op connectivity check that always reports success.
func Probe() int32 { return StatusOK }
