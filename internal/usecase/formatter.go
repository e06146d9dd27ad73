package usecase

// MessageFormatter turns a recipient and content into the text a notifier sends.
type MessageFormatter struct{}

// FormatMessage returns "Dear <recipient>, <content>" with both parts taken verbatim.
func (MessageFormatter) FormatMessage(recipient, content string) string {
	return "Dear " + recipient + ", " + content
}
