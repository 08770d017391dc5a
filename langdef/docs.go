/*
Package langdef converts textual grammar description to grammar.Grammar structure.

Grammar is described using parsing expression notation. Self-definition of this notation is:
*/
//  grammar = rule+ end;
//  rule = name "=" choice ";";
//  choice = sequence ("|" sequence)*;
//  sequence = prefixed+;
//  prefixed = ("~" | "&")? suffixed;     # negative or positive lookahead
//  suffixed = primary ("*" | "+" | "?")*;
//  primary = string (".." string)? | "any" | "end" | name | "(" choice ")";
/*
Description must be a valid UTF-8 text. Whitespace and line breaks are insignificant.
Line comments start with # and end with line feed.

String literals are delimited with double quotes and may contain escape sequences:
\\ \" \n \r \t \xHH \uHHHH \UHHHHHHHH. Two single-rune literals joined with ".." match any rune
of the inclusive range, e.g. "a".."z".

Names consist of latin letters, digits, and underscores, and start with a letter or underscore.
Names are case-sensitive. "any" (matches any single rune) and "end" (matches the end of input)
are reserved and cannot be used as rule names.

Matching follows PEG semantics: choice takes the first matching alternative, repetitions are
greedy and never backtrack, lookaheads consume nothing. The first rule is the default start rule.

Rules whose names start with an upper-case letter are structural (see grammar.IsStructural),
the rest are lexical. Lexical rules must be referenced by some other rule.

Parse fails on duplicate rule definitions, references to undefined rules, unused lexical rules,
left recursion, and repetition of expressions that may match empty input.
*/
package langdef
