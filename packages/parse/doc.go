// Package parse handles the small amount of argument shaping reqq does
// before a request is built: splitting -H key=value tokens into header
// pairs and making sure URLs carry a scheme.
package parse
