// Package utils holds small string helpers shared by the commands and the
// export pipeline.
package utils
