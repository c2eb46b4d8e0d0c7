// Package rules enumerates the horizontal rules of a table region and
// blanks a selected subset of them.
//
// A logical rule is one line the reader sees. In a longtable the head
// section is rendered twice, once for the first page and once for every
// continuation page, and the continuation foot may repeat the last rule, so
// one logical rule can own two fragments. [Locate] merges those into one
// [Group]; [Apply] blanks whole groups so a rule never disappears on one
// page and survives on the next.
//
//	r, _ := region.FindTable(stream)
//	groups, _ := rules.Locate(stream, r)
//	sel, _ := selector.Parse("0 -1")
//	_ = rules.Apply(stream, groups, sel.Resolve(len(groups)), rules.Hide)
package rules
