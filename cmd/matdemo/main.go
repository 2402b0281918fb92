// Command matdemo drives the matrix package end to end: it builds random
// matrices and prints sums, differences, products and transposes with the
// framed Describe rendering.
package main

func main() {
	Execute()
}
