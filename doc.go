/*
Package seamcarve finds and removes minimum energy seams, the building block of
content aware image resizing.

Every pixel gets an energy value derived from the color gradient of its neighbors.
A seam is a connected path of pixels crossing the image from top to bottom (vertical)
or from left to right (horizontal); removing the seam with the lowest total energy
shrinks the image by one column or row while keeping its important parts intact.

The seam search treats the pixels as a directed acyclic graph. The nodes are put in
topological order with an iterative depth-first traversal, then the edges are relaxed
in that order to obtain the shortest path between a virtual source and a virtual sink.

A simple example which narrows an image by ten columns:

	package main

	import (
		"log"

		"github.com/esimov/seamcarve"
	)

	func main() {
		pic := seamcarve.NewPicture(img)
		c := seamcarve.NewCarver(pic)

		for i := 0; i < 10; i++ {
			seam, err := c.FindVerticalSeam()
			if err != nil {
				log.Fatal(err)
			}
			if err := pic.RemoveVerticalSeam(seam); err != nil {
				log.Fatal(err)
			}
		}
	}
*/
package seamcarve
