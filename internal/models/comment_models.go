package models

// Comment is one cell of the comment column. It has no identity beyond its
// position in the CommentSet it was loaded into.
type Comment = string

// CommentSet is loaded once at startup and never mutated afterwards.
type CommentSet []Comment

func (cs CommentSet) Len() int {
	return len(cs)
}

