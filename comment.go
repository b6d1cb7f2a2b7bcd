package wordfields

import "github.com/tsawler/wordfields/annotate"

// NoCommentsMessage is reported when no comment is present at the caret.
const NoCommentsMessage = "No comments"

// CommentAtCaret returns the presentable text of the comment at the caret.
// Absence of a comment is a normal outcome and yields NoCommentsMessage;
// formatting is never applied to an absent result.
func (d *Document) CommentAtCaret() string {
	info, ok := annotate.LookupComment(d.host.CaretRange())
	if !ok {
		return NoCommentsMessage
	}
	return annotate.FormatCommentInfo(info)
}
