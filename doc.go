// Package bytereader provides a minimal byte cursor to build hand-written recursive
// descent parsers on. A [Reader] walks over an immutable byte sequence and tracks the
// byte offset, line and column of its cursor.
//
// The primitives fall into three groups:
//   - **Movement**: [Reader.AdvanceBy], [Reader.UnwindBy], [Reader.SkipWhile] and
//     [Reader.SkipWhitespace]. Movement saturates at both ends of the input.
//   - **Lookahead and consumption**: [Reader.Peek], [Reader.Next], [Reader.ReadWhile],
//     [Reader.Consume], [Reader.ConsumeOneOf] and friends.
//   - **Literals**: identifiers ([Reader.ReadSnake], ...), quoted strings
//     ([Reader.ReadString]) and decimal integers ([Reader.ReadInt], [ReadSigned], ...).
//
// A failing operation never moves the cursor. Readers for structured literals return
// [ErrNoMatch] (or an error matching it) if the literal is not found at the cursor.
// Integer readers panic if a literal overflows the target type.
//
// Backtracking is explicit: save [Reader.Position] before a speculative parse and pass
// it to [Reader.Reset] on failure, or step back with [Reader.UnwindBy].
package bytereader
