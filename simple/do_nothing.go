package simple

// DoNothing is the sole normal form for statements. It carries no payload;
// all DoNothing values compare equal with ==.
type DoNothing struct{}

func (DoNothing) Reducible() bool { return false }
func (DoNothing) String() string  { return "do-nothing" }
func (DoNothing) isStatement()    {}
