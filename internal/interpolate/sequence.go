package interpolate

// The two passes of the pipeline iterate in opposite orders, and the final
// reshape is only correct if the assembler agrees with the second pass on
// which axis varies fastest. The sequence types below tag that ordering so a
// transposition cannot pass silently between stages.

// AzimuthMajor is the output of the zenith pass: one dense zenith profile per
// sampled azimuth, concatenated in sampled-azimuth order. Element (a, z)
// lives at index a*blockLen + z, where blockLen is the dense zenith count.
type AzimuthMajor []float64

// ZenithMajor is the output of the azimuth pass: one dense azimuth sweep per
// dense zenith, concatenated in dense-zenith order. Each sweep covers
// azimuths 0..359; the 360-degree value is dropped by the pass and restored
// by the assembler. Element (z, a) lives at index z*sweepLen + a.
type ZenithMajor []float64
