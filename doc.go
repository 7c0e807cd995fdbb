/*
Package densestr contains a compact, immutable container for an ordered
sequence of strings. Instead of one allocation per string, all elements share
a single buffer and are addressed by an array of boundary offsets.

Data Structure Documentation

Strings

A Strings value holds the bytes of all elements, concatenated in order
without separators, followed by a boundary index.

    Buffer layout:
    +-----------+-----------+---------+-----------+
    | element 0 | element 1 |   ...   | element n |
    +-----------+-----------+---------+-----------+

    Boundary index:
    +--------------------------+-------+--------------------------+
    | start of element 1 (int) |  ...  | start of element n (int) |
    +--------------------------+-------+--------------------------+

The first element always starts at offset 0 and the last one always ends at
the end of the buffer, so an array of n+1 elements stores n offsets. Empty
elements produce repeated offsets:

    ["a", "", "", "b"] => buffer "ab", boundaries [1, 1, 1]

Lookups return substrings of the shared buffer, they never copy. The buffer is
kept alive for as long as any returned element is reachable.
*/
package densestr
