package messages

import (
	"encoding/base64"
	"fmt"

	"github.com/tidwall/gjson"

	"claudewire/pkg/utils"
)

//----------------------------------------------------------------
// ContentBlock - externally-tagged union of content shapes
//----------------------------------------------------------------

// ContentType tags the active variant of a content block.
type ContentType string

const (
	ContentTypeText      ContentType = "text"
	ContentTypeImage     ContentType = "image"
	ContentTypeTextDelta ContentType = "text_delta"
)

func (t ContentType) String() string {
	return string(t)
}

// UnmarshalJSON rejects content types outside the documented set.
func (t *ContentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ContentType(s) {
	case ContentTypeText, ContentTypeImage, ContentTypeTextDelta:
		*t = ContentType(s)
		return nil
	}
	return &UnknownContentTypeError{Value: s}
}

// ContentBlock is one unit of content, tagged by its "type" field.
// Variants: TextContentBlock, ImageContentBlock, TextDeltaContentBlock.
type ContentBlock interface {
	ContentType() ContentType
}

// TextContentBlock carries plain text.
type TextContentBlock struct {
	Type ContentType `json:"type"`
	Text string      `json:"text"`
}

// NewTextBlock 建立文字區塊
func NewTextBlock(text string) TextContentBlock {
	return TextContentBlock{
		Type: ContentTypeText,
		Text: text,
	}
}

func (b TextContentBlock) ContentType() ContentType {
	return ContentTypeText
}

func (b TextContentBlock) String() string {
	return prettyJSON(b)
}

// TextDeltaContentBlock carries an incremental text fragment from a
// content_block_delta stream event.
type TextDeltaContentBlock struct {
	Type ContentType `json:"type"`
	Text string      `json:"text"`
}

// NewTextDeltaBlock 建立增量文字區塊
func NewTextDeltaBlock(text string) TextDeltaContentBlock {
	return TextDeltaContentBlock{
		Type: ContentTypeTextDelta,
		Text: text,
	}
}

func (b TextDeltaContentBlock) ContentType() ContentType {
	return ContentTypeTextDelta
}

func (b TextDeltaContentBlock) String() string {
	return prettyJSON(b)
}

// ImageContentBlock carries one image.
type ImageContentBlock struct {
	Type   ContentType        `json:"type"`
	Source ImageContentSource `json:"source"`
}

// NewImageBlock 建立圖片區塊（base64）
func NewImageBlock(data []byte, mediaType ImageMediaType) ImageContentBlock {
	return ImageContentBlock{
		Type: ContentTypeImage,
		Source: ImageContentSource{
			Type:      ImageSourceTypeBase64,
			MediaType: mediaType,
			Data:      data,
		},
	}
}

// NewImageBlockFromBytes builds an image block, sniffing the media type
// from the raw bytes. It fails when the bytes are not one of the image
// formats the API accepts.
func NewImageBlockFromBytes(data []byte) (ImageContentBlock, error) {
	detected, err := utils.DetectImageMediaType(data)
	if err != nil {
		return ImageContentBlock{}, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return NewImageBlock(data, ImageMediaType(detected)), nil
}

func (b ImageContentBlock) ContentType() ContentType {
	return ContentTypeImage
}

func (b ImageContentBlock) String() string {
	return prettyJSON(b)
}

// decodeContentBlock discriminates on the sibling "type" field and decodes
// the matching variant.
func decodeContentBlock(data []byte) (ContentBlock, error) {
	tag := gjson.GetBytes(data, "type")
	if !tag.Exists() {
		return nil, &UnknownContentTypeError{Value: ""}
	}
	switch ContentType(tag.String()) {
	case ContentTypeText:
		var b TextContentBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	case ContentTypeImage:
		var b ImageContentBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	case ContentTypeTextDelta:
		var b TextDeltaContentBlock
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, &UnknownContentTypeError{Value: tag.String()}
}

//----------------------------------------------------------------
// ImageContentSource - 圖片來源
//----------------------------------------------------------------

// ImageSourceType tags how image bytes are delivered. The API currently
// accepts base64 only.
type ImageSourceType string

const ImageSourceTypeBase64 ImageSourceType = "base64"

func (t ImageSourceType) String() string {
	return string(t)
}

// UnmarshalJSON rejects source types outside the documented set.
func (t *ImageSourceType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if ImageSourceType(s) != ImageSourceTypeBase64 {
		return &UnknownValueError{Field: "image source type", Value: s}
	}
	*t = ImageSourceTypeBase64
	return nil
}

// ImageMediaType is the MIME type of an image block.
type ImageMediaType string

const (
	ImageMediaTypeJPEG ImageMediaType = "image/jpeg"
	ImageMediaTypePNG  ImageMediaType = "image/png"
	ImageMediaTypeGIF  ImageMediaType = "image/gif"
	ImageMediaTypeWebP ImageMediaType = "image/webp"
)

func (t ImageMediaType) String() string {
	return string(t)
}

// UnmarshalJSON rejects media types outside the documented set.
func (t *ImageMediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ImageMediaType(s) {
	case ImageMediaTypeJPEG, ImageMediaTypePNG, ImageMediaTypeGIF, ImageMediaTypeWebP:
		*t = ImageMediaType(s)
		return nil
	}
	return &UnknownValueError{Field: "image media type", Value: s}
}

// ImageContentSource holds the raw bytes of an image block. Data carries
// decoded bytes in memory and crosses the wire as base64.
type ImageContentSource struct {
	Type      ImageSourceType `json:"type"`
	MediaType ImageMediaType  `json:"media_type"`
	Data      []byte          `json:"-"`
}

// MarshalJSON 自訂 JSON 序列化（將 Data 轉為 base64）
func (s ImageContentSource) MarshalJSON() ([]byte, error) {
	type alias struct {
		Type      ImageSourceType `json:"type"`
		MediaType ImageMediaType  `json:"media_type"`
		Data      string          `json:"data"`
	}
	return json.Marshal(alias{
		Type:      s.Type,
		MediaType: s.MediaType,
		Data:      base64.StdEncoding.EncodeToString(s.Data),
	})
}

// UnmarshalJSON 自訂 JSON 反序列化（將 base64 轉為 Data）
func (s *ImageContentSource) UnmarshalJSON(data []byte) error {
	aux := struct {
		Type      ImageSourceType `json:"type"`
		MediaType ImageMediaType  `json:"media_type"`
		Data      string          `json:"data"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	decoded, err := base64.StdEncoding.DecodeString(aux.Data)
	if err != nil {
		return fmt.Errorf("decode image data: %w", err)
	}
	s.Type = aux.Type
	s.MediaType = aux.MediaType
	s.Data = decoded
	return nil
}

func (s ImageContentSource) String() string {
	return prettyJSON(s)
}

//----------------------------------------------------------------
// Content - single string or array of content blocks
//----------------------------------------------------------------

// Content is the content of a message: either a single text string or an
// array of content blocks. The form that arrived on the wire survives a
// round trip, so re-encoding reproduces the original shape.
type Content struct {
	text   string
	blocks []ContentBlock
	multi  bool
}

// NewTextContent builds the single-string form.
func NewTextContent(text string) Content {
	return Content{text: text}
}

// NewBlockContent builds the array-of-blocks form.
func NewBlockContent(blocks ...ContentBlock) Content {
	return Content{blocks: blocks, multi: true}
}

// IsText reports whether the content is the single-string form.
func (c Content) IsText() bool {
	return !c.multi
}

// Blocks returns the block form, or nil for the single-string form.
func (c Content) Blocks() []ContentBlock {
	return c.blocks
}

// FlattenIntoText joins the text of every text block, or returns the single
// string form directly. Fails when no text is present in block form.
func (c Content) FlattenIntoText() (string, error) {
	if !c.multi {
		return c.text, nil
	}
	var joined string
	found := false
	for _, block := range c.blocks {
		if b, ok := block.(TextContentBlock); ok {
			joined += b.Text
			found = true
		}
	}
	if !found {
		return "", ErrNoTextContent
	}
	return joined, nil
}

// FlattenIntoImageSource returns the source of the first image block.
func (c Content) FlattenIntoImageSource() (ImageContentSource, error) {
	for _, block := range c.blocks {
		if b, ok := block.(ImageContentBlock); ok {
			return b.Source, nil
		}
	}
	return ImageContentSource{}, ErrNoImageContent
}

// MarshalJSON writes whichever form the content holds.
func (c Content) MarshalJSON() ([]byte, error) {
	if !c.multi {
		return json.Marshal(c.text)
	}
	if c.blocks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.blocks)
}

// UnmarshalJSON accepts a bare string or an array of tagged blocks.
func (c *Content) UnmarshalJSON(data []byte) error {
	parsed := gjson.ParseBytes(data)
	switch parsed.Type {
	case gjson.String:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Content{text: s}
		return nil
	case gjson.JSON:
		if !parsed.IsArray() {
			return fmt.Errorf("content must be a string or an array, got object")
		}
		elems := parsed.Array()
		blocks := make([]ContentBlock, 0, len(elems))
		for _, elem := range elems {
			block, err := decodeContentBlock([]byte(elem.Raw))
			if err != nil {
				return err
			}
			blocks = append(blocks, block)
		}
		*c = Content{blocks: blocks, multi: true}
		return nil
	}
	return fmt.Errorf("content must be a string or an array")
}

func (c Content) String() string {
	return prettyJSON(c)
}
