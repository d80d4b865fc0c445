// 指示: miu200521358
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PathNotFoundError はプロパティパスの解決失敗を表す。
type PathNotFoundError struct {
	Path    string
	Segment string
	Reason  string
}

// Error はエラーメッセージを返す。
func (e *PathNotFoundError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("プロパティパスを解決できません: path=%s reason=%s", e.Path, e.Reason)
	}
	return fmt.Sprintf("プロパティパスを解決できません: path=%s segment=%s reason=%s", e.Path, e.Segment, e.Reason)
}

// IsPathNotFound はパス解決失敗エラーか判定する。
func IsPathNotFound(err error) bool {
	var target *PathNotFoundError
	return errors.As(err, &target)
}

// PropertyNode はプロパティツリーの1ノードを表す。
// Childrenは名前付きフィールドとキー付きコレクション、Elementsは配列要素を保持する。
type PropertyNode struct {
	Children map[string]*PropertyNode
	Elements []*PropertyNode
	Value    any
}

// NewLeafNode は値のみの末端ノードを生成する。
func NewLeafNode(value any) *PropertyNode {
	return &PropertyNode{Value: value}
}

// NewMapNode は名前付き子を持つノードを生成する。
func NewMapNode() *PropertyNode {
	return &PropertyNode{Children: map[string]*PropertyNode{}}
}

// NewArrayNode は指定長の配列ノードを生成する。各要素は末端ノードで初期化する。
func NewArrayNode(length int) *PropertyNode {
	node := &PropertyNode{Elements: make([]*PropertyNode, 0, length)}
	for i := 0; i < length; i++ {
		node.Elements = append(node.Elements, NewLeafNode(nil))
	}
	return node
}

// SetChild は名前付き子ノードを設定し、自身を返す。
func (n *PropertyNode) SetChild(name string, child *PropertyNode) *PropertyNode {
	if n.Children == nil {
		n.Children = map[string]*PropertyNode{}
	}
	n.Children[name] = child
	return n
}

// BuildPropertyNode は任意の値（map/配列/スカラー）からノードを構築する。
func BuildPropertyNode(value any) *PropertyNode {
	switch typed := value.(type) {
	case map[string]any:
		node := NewMapNode()
		for name, child := range typed {
			node.SetChild(name, BuildPropertyNode(child))
		}
		return node
	case []any:
		node := &PropertyNode{Elements: make([]*PropertyNode, 0, len(typed))}
		for _, child := range typed {
			node.Elements = append(node.Elements, BuildPropertyNode(child))
		}
		return node
	default:
		return NewLeafNode(value)
	}
}

// pathSegmentKind はパス1区切りの種別を表す。
type pathSegmentKind int

const (
	pathSegmentField pathSegmentKind = iota
	pathSegmentIndex
	pathSegmentKey
)

// pathSegment は解析済みパス区切りを表す。
type pathSegment struct {
	kind  pathSegmentKind
	field string
	index int
	key   string
}

// Resolve はドット・添字混在パスを解決し、到達したノードを返す。
// 解決できない場合は*PathNotFoundErrorを返す。
func (n *PropertyNode) Resolve(path string) (*PropertyNode, error) {
	if n == nil {
		return nil, &PathNotFoundError{Path: path, Reason: "ツリーが未設定です"}
	}
	segments, err := parsePropertyPath(path)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, &PathNotFoundError{Path: path, Reason: "パスが空です"}
	}

	current := n
	for _, segment := range segments {
		next, resolveErr := current.resolveSegment(path, segment)
		if resolveErr != nil {
			return nil, resolveErr
		}
		current = next
	}
	return current, nil
}

// resolveSegment は1区切り分の解決を行う。
func (n *PropertyNode) resolveSegment(path string, segment pathSegment) (*PropertyNode, error) {
	switch segment.kind {
	case pathSegmentField:
		child, exists := n.Children[segment.field]
		if !exists {
			return nil, &PathNotFoundError{Path: path, Segment: segment.field, Reason: "フィールドが存在しません"}
		}
		return child, nil
	case pathSegmentKey:
		child, exists := n.Children[segment.key]
		if !exists {
			return nil, &PathNotFoundError{Path: path, Segment: segment.key, Reason: "キーが存在しません"}
		}
		return child, nil
	case pathSegmentIndex:
		if segment.index < 0 || segment.index >= len(n.Elements) {
			return nil, &PathNotFoundError{
				Path:    path,
				Segment: strconv.Itoa(segment.index),
				Reason:  "添字が範囲外です",
			}
		}
		return n.Elements[segment.index], nil
	default:
		return nil, &PathNotFoundError{Path: path, Reason: "不明な区切り種別です"}
	}
}

// parsePropertyPath はパス文字列を区切り列へ解析する。
// 例: pose.bones["腕.L"].rotation_euler[0]
func parsePropertyPath(path string) ([]pathSegment, error) {
	segments := []pathSegment{}
	i := 0
	length := len(path)
	expectField := true

	for i < length {
		switch {
		case path[i] == '.':
			if expectField {
				return nil, &PathNotFoundError{Path: path, Reason: "区切りの位置が不正です"}
			}
			expectField = true
			i++
		case path[i] == '[':
			closing, segment, err := parseBracketSegment(path, i)
			if err != nil {
				return nil, err
			}
			segments = append(segments, segment)
			expectField = false
			i = closing + 1
		default:
			start := i
			for i < length && path[i] != '.' && path[i] != '[' {
				i++
			}
			field := path[start:i]
			if strings.TrimSpace(field) == "" {
				return nil, &PathNotFoundError{Path: path, Reason: "フィールド名が空です"}
			}
			segments = append(segments, pathSegment{kind: pathSegmentField, field: field})
			expectField = false
		}
	}
	if expectField && len(segments) > 0 {
		return nil, &PathNotFoundError{Path: path, Reason: "末尾の区切りが不正です"}
	}
	return segments, nil
}

// parseBracketSegment は `[...]` 区切りを解析し、閉じ位置と区切りを返す。
func parseBracketSegment(path string, open int) (int, pathSegment, error) {
	if open+1 >= len(path) {
		return 0, pathSegment{}, &PathNotFoundError{Path: path, Reason: "添字が閉じていません"}
	}

	// クォート付きはキー参照。キー内のドットや角括弧は区切りとして扱わない。
	if path[open+1] == '"' || path[open+1] == '\'' {
		quote := path[open+1]
		closeQuote := strings.IndexByte(path[open+2:], quote)
		if closeQuote < 0 {
			return 0, pathSegment{}, &PathNotFoundError{Path: path, Reason: "キーのクォートが閉じていません"}
		}
		key := path[open+2 : open+2+closeQuote]
		closing := open + 2 + closeQuote + 1
		if closing >= len(path) || path[closing] != ']' {
			return 0, pathSegment{}, &PathNotFoundError{Path: path, Reason: "キーの添字が閉じていません"}
		}
		return closing, pathSegment{kind: pathSegmentKey, key: key}, nil
	}

	closing := strings.IndexByte(path[open:], ']')
	if closing < 0 {
		return 0, pathSegment{}, &PathNotFoundError{Path: path, Reason: "添字が閉じていません"}
	}
	closing += open
	index, err := strconv.Atoi(path[open+1 : closing])
	if err != nil {
		return 0, pathSegment{}, &PathNotFoundError{Path: path, Reason: "添字が整数ではありません"}
	}
	return closing, pathSegment{kind: pathSegmentIndex, index: index}, nil
}
