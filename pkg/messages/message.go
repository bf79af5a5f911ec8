package messages

//----------------------------------------------------------------
// Message - 對話訊息
//----------------------------------------------------------------

// Message is one conversational turn in a request's message list.
type Message struct {
	Role    Role    `json:"role"`
	Content Content `json:"content"`
}

// NewUserMessage 建立使用者訊息
func NewUserMessage(text string) Message {
	return Message{
		Role:    RoleUser,
		Content: NewTextContent(text),
	}
}

// NewAssistantMessage 建立助理訊息
func NewAssistantMessage(text string) Message {
	return Message{
		Role:    RoleAssistant,
		Content: NewTextContent(text),
	}
}

// NewUserMessageWithBlocks builds a user message in the block form, e.g.
// for mixed text and image input.
func NewUserMessageWithBlocks(blocks ...ContentBlock) Message {
	return Message{
		Role:    RoleUser,
		Content: NewBlockContent(blocks...),
	}
}

// NewAssistantMessageWithBlocks builds an assistant message in the block
// form.
func NewAssistantMessageWithBlocks(blocks ...ContentBlock) Message {
	return Message{
		Role:    RoleAssistant,
		Content: NewBlockContent(blocks...),
	}
}

// GetTextContent 提取所有文字內容
func (m Message) GetTextContent() string {
	text, err := m.Content.FlattenIntoText()
	if err != nil {
		return ""
	}
	return text
}

// HasImages 判斷訊息是否包含圖片
func (m Message) HasImages() bool {
	for _, block := range m.Content.Blocks() {
		if block.ContentType() == ContentTypeImage {
			return true
		}
	}
	return false
}

// FilterBlocks 過濾指定類型的區塊
func (m Message) FilterBlocks(contentType ContentType) []ContentBlock {
	var filtered []ContentBlock
	for _, block := range m.Content.Blocks() {
		if block.ContentType() == contentType {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

func (m Message) String() string {
	return prettyJSON(m)
}
