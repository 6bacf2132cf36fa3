package archive

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const (
	// FallbackNoTitle 在文档合法但没有非空 <title> 时返回
	FallbackNoTitle = "无标题"
	// FallbackParseError 在内容不是合法 XML 时返回
	FallbackParseError = "XML解析错误"
)

// ExtractTitle 从结构化消息的 XML 负载里取出第一个 <title> 的直接文本
// 任意深度、按文档顺序取第一个，文本只算到它的第一个子元素为止；
// 总是返回非空字符串，从不报错
func ExtractTitle(content string) string {
	dec := xml.NewDecoder(strings.NewReader(content))

	sawElement := false
	inTitle := false
	done := false
	var text strings.Builder

	// 先把整篇文档走完再下结论，后半截损坏的文档同样算解析失败
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return FallbackParseError
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
			if inTitle {
				// 子元素开始，直接文本到此为止
				inTitle = false
				done = true
			} else if !done && t.Name.Local == "title" {
				inTitle = true
			}
		case xml.CharData:
			if inTitle {
				text.Write(t)
			}
		case xml.EndElement:
			if inTitle && t.Name.Local == "title" {
				inTitle = false
				done = true
			}
		}
	}

	// 没有根元素的纯文本不算合法文档
	if !sawElement {
		return FallbackParseError
	}
	if s := text.String(); done && s != "" {
		return s
	}
	return FallbackNoTitle
}
