package cmds

// Var defines name to set a value and name+"." to reset it to zero.
func Var[T any](name string, desc string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn on and "!"+name to turn off.
func Switch(name string, desc string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines name to append a value on every use.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
