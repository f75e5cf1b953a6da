package sequence

import "sort"

// stepNames maps each single-letter step code to the name of the Yul
// optimizer pass it selects. The table is lookup data for reporting; the
// interpreter itself treats any letter outside it as an opaque step and lets
// the compiler reject it.
var stepNames = map[byte]string{
	'a': "SSATransform",
	'C': "ConditionalSimplifier",
	'c': "CommonSubexpressionEliminator",
	'D': "DeadCodeEliminator",
	'd': "VarDeclInitializer",
	'E': "EqualStoreEliminator",
	'e': "ExpressionInliner",
	'F': "FunctionSpecializer",
	'f': "BlockFlattener",
	'g': "FunctionGrouper",
	'h': "FunctionHoister",
	'I': "ForLoopConditionIntoBody",
	'i': "FullInliner",
	'j': "ExpressionJoiner",
	'L': "LoadResolver",
	'l': "CircularReferencesPruner",
	'M': "LoopInvariantCodeMotion",
	'm': "Rematerialiser",
	'n': "ControlFlowSimplifier",
	'O': "ForLoopConditionOutOfBody",
	'o': "ForLoopInitRewriter",
	'p': "UnusedFunctionParameterPruner",
	'r': "UnusedAssignEliminator",
	'S': "UnusedStoreEliminator",
	's': "ExpressionSimplifier",
	'T': "LiteralRematerialiser",
	't': "StructuralSimplifier",
	'U': "ConditionalUnsimplifier",
	'u': "UnusedPruner",
	'V': "SSAReverser",
	'v': "EquivalentFunctionCombiner",
	'x': "ExpressionSplitter",
}

// PassName returns the optimizer pass name for a step letter.
// The second return value is false for letters outside the registry.
func PassName(letter byte) (string, bool) {
	name, ok := stepNames[letter]
	return name, ok
}

// Letters returns all registered step letters in ascending byte order.
func Letters() []byte {
	letters := make([]byte, 0, len(stepNames))
	for letter := range stepNames {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
