package semantic

// Diagnostic message texts. These are the exact strings spec.md §4 quotes;
// both passes report them verbatim so golden-output comparisons are stable.
const (
	msgNonFunctionVoid      = "Non-function declared void"
	msgInvalidStructName    = "Invalid name of struct type"
	msgMultiplyDeclared     = "Multiply declared identifier"
	msgUndeclaredIdentifier = "Undeclared identifier"
	msgDotNonStruct         = "Dot-access of non-struct type"
	msgInvalidFieldName     = "Invalid struct field name"

	msgArithNonNumeric   = "Arithmetic operator applied to non-numeric operand"
	msgRelNonNumeric     = "Relational operator applied to non-numeric operand"
	msgLogicalNonBool    = "Logical operator applied to non-bool operand"
	msgEqVoidFunctions   = "Equality operator applied to void functions"
	msgEqFunctions       = "Equality operator applied to functions"
	msgEqStructNames     = "Equality operator applied to struct names"
	msgEqStructVariables = "Equality operator applied to struct variables"
	msgTypeMismatch      = "Type mismatch"

	msgFunctionAssignment     = "Function assignment"
	msgStructNameAssignment   = "Struct name assignment"
	msgStructVariableAssign   = "Struct variable assignment"
	msgCallNonFunction        = "Attempt to call a non-function"
	msgWrongArgCount          = "Function call with wrong number of args"
	msgActualFormalMismatch   = "Type of actual does not match type of formal"
	msgReadFunction           = "Attempt to read a function"
	msgReadStructName         = "Attempt to read a struct name"
	msgReadStructVariable     = "Attempt to read a struct variable"
	msgWriteVoid              = "Attempt to write void"
	msgNonBoolIf              = "Non-bool expression used as an if condition"
	msgNonBoolWhile           = "Non-bool expression used as a while condition"
	msgNonIntRepeat           = "Non-integer expression used as a repeat clause"
	msgMissingReturnValue     = "Missing return value"
	msgReturnValueInVoidFn    = "Return with a value in a void function"
	msgBadReturnValue         = "Bad return value"

	// msgUnusedVariable is a non-fatal style hint (--hints normal/pedantic),
	// never a fatal diagnostic: it never raises HadError.
	msgUnusedVariable = "Unused variable"
)
