// Package op defines the operation-tree node the core consumes from the
// upstream operation layer: type, loops, passes, output, coolant,
// settings, children, and the preprocess/as-cutobjects hooks, expressed
// as plain Go struct fields and function-valued hooks rather than
// duck-typed methods.
package op
