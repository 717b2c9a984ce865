// Package token defines the structural token model produced by the
// XML-like tokenizer. Tokens carry borrowed spans into the document's
// backing bytes and stay valid for as long as those bytes do.
package token
