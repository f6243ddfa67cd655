// Package token provides the character level layer of DON decoding.
//
// A [Tape] is a consumable cursor over the runes of a document. [ReadString]
// and [ReadQuoted] lex leaf strings from a tape, decoding backslash escapes
// with [Unescape]. [Quote] and [EncodeString] go the other way, producing
// text that the lexer reads back to the same string.
//
// Lexing never fails. Input the lexer has to guess about is reported as a
// [Warning] through the hook installed with [Tape.OnWarn].
package token
