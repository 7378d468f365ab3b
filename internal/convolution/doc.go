// Package convolution steps through the circular convolution of two integer
// sequences one output sample at a time.
//
// The two sequences are laid out on concentric rings: the fixed sequence on
// the outer ring in clockwise index order, the rotating sequence on the inner
// ring in counter-clockwise order. Every Step turns the inner ring by one slot
// in the negative direction and produces
//
//	y[k] = sum over j of fixed[j] * rotating[(k-j) mod N]
//
// for the next k. After N steps every circular shift has been produced once,
// in order, and the results equal Circular(fixed, rotating).
//
// An Engine is not safe for concurrent use; the caller owns it.
package convolution
