// Package encode is the boundary to the QR-encoding capability.
//
// # Overview
//
// The rest of the application never touches the QR library directly. It sees
// three things: the ECLevel enumeration, the Image matrix, and the Encoder
// interface. QREncoder is the single concrete implementation, built on
// github.com/skip2/go-qrcode; tests substitute fakes behind the same
// interface.
//
// # Contract
//
// Encode is called with non-empty text and one of the five levels. Exactly
// one of image/error comes back per call; there are no partial results. An
// encode failure is a normal return value with a human-readable message
// (typically the payload exceeding the capacity of the chosen level), never
// a panic.
//
// LevelDefault delegates the actual correction-level choice to the encoder's
// own policy rather than pinning one of L/M/Q/H.
//
// # Image Representation
//
// Image carries the raw module matrix (quiet zone included) instead of a
// rasterized picture. The terminal renderer draws it with block characters;
// PNG export rasterizes it separately via EncodePNG. Keeping the matrix as
// the exchange format means the display layer has no dependency on the QR
// library or on image sizes.
package encode
