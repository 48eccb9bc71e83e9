// Package scene loads path definitions from HCL documents.
//
// A scene file contains any number of named path blocks. Each path lists its
// guides in order; guides may carry an explicit order that overrides their
// position in the file.
//
//	path "intro" {
//	  resolution = 12
//	  speed      = 2.5
//	  mode       = "loop"
//
//	  guide { position = origin }
//	  guide { position = vec(1, 0, 0) }
//	  guide {
//	    position = mid([1, 0, 0], [1, -2, 0])
//	    order    = 5
//	  }
//	}
//
// Positions are lists of three numbers. The functions vec, add and mid and
// the variable origin are available in expressions.
package scene
