package interpreter

// endOfProgram is the return line of a GOSUB issued on the last stored line
const endOfProgram = -1

// ForFrame is the state of one active FOR loop
type ForFrame struct {
	VarName string  // loop variable
	Start   float64 // initial value
	End     float64 // inclusive limit
	Step    float64 // increment applied by NEXT
	ForLine int     // line number of the FOR statement (-1 in immediate mode)
}

// GosubFrame is the resumption point of one pending GOSUB
type GosubFrame struct {
	ReturnLine int // line to resume at, or endOfProgram
}

// ControlKind tells the execution driver what to do after a statement
type ControlKind int

const (
	Continue ControlKind = iota // fall through to the next line
	Jump                        // continue at Control.Line
	Halt                        // stop the program
)

// Control is the control-flow signal returned by every statement
type Control struct {
	Kind ControlKind
	Line int
}

var proceed = Control{Kind: Continue}

func jumpTo(line int) Control {
	return Control{Kind: Jump, Line: line}
}

func halt() Control {
	return Control{Kind: Halt}
}

func (k ControlKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Jump:
		return "jump"
	case Halt:
		return "halt"
	default:
		return "unknown"
	}
}
