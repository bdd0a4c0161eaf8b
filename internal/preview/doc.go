// Package preview generates the downscaled lossy previews of the gallery.
//
// Previews fit within a 900x600 bounding box with the source aspect ratio
// preserved. Two encoder paths exist: libvips (decode-time shrinking, WebP
// output) when InitVips has run, and a pure-Go fallback (imaging decode,
// Fit, JPEG output) otherwise. A Generator picks its path at construction
// so a whole build uses one consistent preview format.
package preview
