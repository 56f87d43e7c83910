// Package export writes frames to image files. Both sinks fit the orbit to
// the image with render.FitScale, centre it, and flip the y axis so world
// "up" is image "up".
package export
