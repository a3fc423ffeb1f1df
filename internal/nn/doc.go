// Package nn implements inference for fully connected feed-forward networks.
//
// This package provides:
//   - Activation: ReLU and Softmax over whole matrices
//   - Dense: affine transform followed by an activation
//   - Topology: ordered layer descriptors, with the 784-128-64-20-10
//     digit classifier as DefaultTopology
//   - Network: a chain of Dense layers that classifies one input vector
//
// All operations are synchronous and return errors instead of panicking.
package nn
