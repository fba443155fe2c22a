// Package simulate removes a recorded instrument response from a trace and
// imposes a synthetic target response in its place, working in the frequency
// domain.
//
// Responses are expressed as pole-zero-gain models in rad/s (see the response
// package). The combined correction per spectrum bin is
//
//	X'[k] = X[k] * Hsim(iw) / Hrem(iw)
//
// followed by sensitivity rescaling in the time domain. Deconvolution is an
// ill-posed operation where the removed response is weak; a water level can
// floor the removal response magnitude, and the network default of zero
// applies no floor at all, accepting low-frequency amplitude blow-up.
package simulate
