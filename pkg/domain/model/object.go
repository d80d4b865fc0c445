// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_fbx_export/pkg/domain/mmath"
)

// ObjectCategory はオブジェクト種別を表す。
type ObjectCategory string

// オブジェクト種別一覧。
const (
	CATEGORY_MESH     ObjectCategory = "MESH"
	CATEGORY_CURVE    ObjectCategory = "CURVE"
	CATEGORY_SURFACE  ObjectCategory = "SURFACE"
	CATEGORY_META     ObjectCategory = "META"
	CATEGORY_FONT     ObjectCategory = "FONT"
	CATEGORY_ARMATURE ObjectCategory = "ARMATURE"
	CATEGORY_EMPTY    ObjectCategory = "EMPTY"
	CATEGORY_CAMERA   ObjectCategory = "CAMERA"
	CATEGORY_LIGHT    ObjectCategory = "LIGHT"
)

// AnimationBinding はアクティブアクションの割当状態を表す。
type AnimationBinding struct {
	ActiveAction string
	ActionLocked bool
}

// MeshVertex はメッシュ頂点を表す。
type MeshVertex struct {
	Position mmath.Vec3
	Normal   mmath.Vec3
}

// RestBone はレスト姿勢のボーンを表す。
type RestBone struct {
	Name     string
	Position mmath.Vec3
}

// ObjectData はオブジェクトが参照する形状データを表す。
// Sharedは複数オブジェクトから共有されている状態を表し、変形の焼き込みを拒否する。
type ObjectData struct {
	Shared   bool
	Vertices []MeshVertex
	Bones    []RestBone
}

// ShapeKeyBlock はシェイプキーブロックを表す。
type ShapeKeyBlock struct {
	Name      string
	KeyBlocks []KeyBlock
}

// KeyBlock はシェイプキー1件を表す。
type KeyBlock struct {
	Name  string
	Value float64
}

// PropertyTree はシェイプキーブロックのプロパティツリーを構築する。
// key_blocksは名前参照と添字参照の両方で到達できる。
func (s *ShapeKeyBlock) PropertyTree() *PropertyNode {
	root := NewMapNode()
	if s == nil {
		return root
	}
	keyBlocks := NewMapNode()
	for _, keyBlock := range s.KeyBlocks {
		blockNode := NewMapNode()
		blockNode.SetChild("name", NewLeafNode(keyBlock.Name))
		blockNode.SetChild("value", NewLeafNode(keyBlock.Value))
		keyBlocks.SetChild(keyBlock.Name, blockNode)
		keyBlocks.Elements = append(keyBlocks.Elements, blockNode)
	}
	root.SetChild("key_blocks", keyBlocks)
	root.SetChild("eval_time", NewLeafNode(0.0))
	return root
}

// Object はシーン上のオブジェクトを表す。
type Object struct {
	name             string
	index            int
	Category         ObjectCategory
	Location         mmath.Vec3
	RotationEuler    mmath.Vec3
	Scale            mmath.Vec3
	Selected         bool
	Visible          bool
	CustomProperties map[string]any
	ShapeKeys        *ShapeKeyBlock
	Binding          *AnimationBinding
	Data             *ObjectData
}

// NewObject は名前指定でオブジェクトを生成する。
func NewObject(name string, category ObjectCategory) *Object {
	return &Object{
		name:     name,
		index:    -1,
		Category: category,
		Scale:    mmath.ONE_VEC3,
		Visible:  true,
	}
}

// Name はオブジェクト名を返す。
func (o *Object) Name() string {
	if o == nil {
		return ""
	}
	return o.name
}

// Index はコレクション内の位置を返す。未登録の場合は-1を返す。
func (o *Object) Index() int {
	if o == nil {
		return -1
	}
	return o.index
}

// PropertyTree はオブジェクトのプロパティツリーを構築する。
// 標準トランスフォームとカスタムプロパティ、アーマチュアはポーズボーンも含む。
func (o *Object) PropertyTree() *PropertyNode {
	root := NewMapNode()
	if o == nil {
		return root
	}
	root.SetChild("location", vectorPropertyNode(o.Location))
	root.SetChild("rotation_euler", vectorPropertyNode(o.RotationEuler))
	root.SetChild("scale", vectorPropertyNode(o.Scale))
	root.SetChild("hide_viewport", NewLeafNode(!o.Visible))

	for name, value := range o.CustomProperties {
		root.SetChild(name, BuildPropertyNode(value))
	}

	if o.Category == CATEGORY_ARMATURE && o.Data != nil && len(o.Data.Bones) > 0 {
		bones := NewMapNode()
		for _, bone := range o.Data.Bones {
			boneNode := NewMapNode()
			boneNode.SetChild("location", vectorPropertyNode(mmath.ZERO_VEC3))
			boneNode.SetChild("rotation_euler", vectorPropertyNode(mmath.ZERO_VEC3))
			boneNode.SetChild("rotation_quaternion", NewArrayNode(4))
			boneNode.SetChild("scale", vectorPropertyNode(mmath.ONE_VEC3))
			bones.SetChild(bone.Name, boneNode)
			bones.Elements = append(bones.Elements, boneNode)
		}
		pose := NewMapNode()
		pose.SetChild("bones", bones)
		root.SetChild("pose", pose)
	}
	return root
}

// vectorPropertyNode は3成分ベクトルを配列ノードへ変換する。
func vectorPropertyNode(v mmath.Vec3) *PropertyNode {
	node := &PropertyNode{Elements: []*PropertyNode{
		NewLeafNode(v.X),
		NewLeafNode(v.Y),
		NewLeafNode(v.Z),
	}}
	return node
}
