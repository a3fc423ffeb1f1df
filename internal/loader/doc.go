// Package loader reads network parameters and images from raw float32 files.
//
// Every file is a headerless sequence of little-endian IEEE-754 float32
// values in row-major order. Its length must be exactly rows*cols*4 bytes
// for the shape it is loaded into; there is no shape information in the
// file itself.
//
// Example:
//
//	net, err := loader.LoadNetwork(nn.DefaultTopology(),
//	    []string{"w1", "w2", "w3", "w4"},
//	    []string{"b1", "b2", "b3", "b4"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img, err := loader.LoadImage("digit.bin", nn.ImageShape)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	digit, err := net.Run(img.Vectorize())
package loader
