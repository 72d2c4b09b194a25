// Package fx implements the offline effect catalog: multi-channel
// sample buffers, parameter specs with clamp-or-default resolution, the
// Effect contract, and the region splice protocol that reassembles a
// buffer around a reprocessed region.
//
// Every effect operates destructively in concept but never mutates its
// input; Process returns a fresh full-length buffer. Fixed-length
// effects rewrite only the selected region of a clone. Length-changing
// effects (the time-stretch family, the freezes, the cross-buffer
// vocoder) build a standalone region result and reconstruct the buffer
// as original[0:start] + region + original[end:].
//
// The catalog is assembled by NewCatalog. Effects that need the offline
// rendering facility (reverb, filter, convolve) receive it through
// WithRenderer; randomized effects share a seed fixed by WithSeed.
package fx
