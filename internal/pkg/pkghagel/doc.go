// Package pkghagel generates short, human-readable identifiers that sort by
// the time they were created.
//
// A monotonic ID is the number of resolution-sized intervals elapsed since a
// fixed start instant, written in a positional notation whose digits are the
// symbols of an alphabet. The digit count is chosen so that the IDs keep a
// fixed width until the configured overflow horizon:
//
//	g, err := pkghagel.New(pkghagel.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	id := g.Monotonic(time.Now()) // e.g. "9KQ4TB"
//
// Any number of independent generators built from the same Config produce
// the same ID for the same instant, so no coordination is needed. IDs issued
// within one interval collide; this is accepted by design. After the horizon
// the IDs grow by one symbol instead of wrapping around.
//
// Random IDs are drawn uniformly from an alphabet using an explicit Source:
//
//	id, err := pkghagel.Random(pkghagel.CryptoSource, 5, pkghagel.DefaultAlphabet)
//
// Everything in this package is free of I/O and safe for concurrent use.
package pkghagel
