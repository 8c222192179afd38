/*
Package parsegen is a parser-generator core: a Brzozowski-derivative regular
expression engine, a derivative-based DFA builder with Hopcroft minimization,
and an LR(0)/LR(1)/LALR(1) table-construction and parse-driver toolbox.

Package structure is as follows:

■ byteset: canonical sorted-interval sets over the byte domain 0..=255.

■ rx: a canonical regular-expression tree supporting Brzozowski derivatives.

■ rx/dfa: derivative-based subset construction and Hopcroft minimization.

■ rx/scan: a dense scan table and a maximal-munch scanner built from it.

■ lr: grammars, LR item-set automata (LR0/LR1/LALR1), the DeRemer–Pennello
LALR(1) lookahead solver, parsing-table synthesis with conflict resolution,
and the lazy parse-event driver.

■ lr/scanner: the Tokenizer interface consumed by the parse driver, plus a
default text/scanner-based implementation and a lexmachine adapter.

The root package contains data types shared by every other package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
Copyright © 2021–2026 The parsegen authors.

*/
package parsegen
