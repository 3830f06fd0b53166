package util

// Nested 是标量或序列二者之一，string只会作为标量出现，不会被拆成字符
type Nested[T any] struct {
	value  T
	items  []Nested[T]
	isList bool
}

func Leaf[T any](v T) Nested[T] {
	return Nested[T]{value: v}
}

func List[T any](items ...Nested[T]) Nested[T] {
	return Nested[T]{items: items, isList: true}
}

// 由字符串切片直接构造一层序列
func Strings(values []string) Nested[string] {
	items := make([]Nested[string], 0, len(values))
	for _, v := range values {
		items = append(items, Leaf(v))
	}
	return List(items...)
}

func (n Nested[T]) IsList() bool {
	return n.isList
}

// Flatten 深度优先展开，保持原有顺序
func Flatten[T any](items ...Nested[T]) []T {
	var out []T
	for _, n := range items {
		out = appendFlat(out, n)
	}
	return out
}

func appendFlat[T any](out []T, n Nested[T]) []T {
	if !n.isList {
		return append(out, n.value)
	}
	for _, child := range n.items {
		out = appendFlat(out, child)
	}
	return out
}
