package collections

import (
	"errors"
	"sync"
)

/**
左倾红黑树满足以下几点特征
1. 新加入的节点都是默认红色
2. 根节点是黑色的
3. 红色节点必须在左侧
4. 由于遵照2-3树, 所以不能左侧不能出现多于一个的红色链接

key的顺序完全由cmp决定, 用自然排序比较器时 "file7" 和 "file007" 是同一个key

插入后自底向上修复:

	右红左黑      -> 左旋
	左红且左左红  -> 右旋
	左右都红      -> 颜色变换, 红色链接上移
*/

var ErrNotFound = errors.New("collections/not found")

type color bool

const (
	red   color = true
	black color = false
)

type llrbNode[K, V any] struct {
	color
	key   K
	value V
	left  *llrbNode[K, V]
	right *llrbNode[K, V]
}

func (n *llrbNode[K, V]) isRed() bool {
	return n != nil && n.color == red
}

// LLRBTree 左倾红黑树, 有序map, 并发安全
type LLRBTree[K, V any] struct {
	rw   sync.RWMutex
	root *llrbNode[K, V]
	cmp  func(a, b K) int
	size int
}

// NewLLRBTree 实例化rbtree
func NewLLRBTree[K, V any](cmp func(a, b K) int) *LLRBTree[K, V] {
	return &LLRBTree[K, V]{cmp: cmp}
}

// Put 添加记录, key已存在时只更新value, 保留第一次写入的key
// 返回key是否是新加入的
func (rbTree *LLRBTree[K, V]) Put(key K, value V) bool {
	rbTree.rw.Lock()
	defer rbTree.rw.Unlock()

	var added bool
	rbTree.root = rbTree.put(rbTree.root, key, value, &added)
	rbTree.root.color = black
	if added {
		rbTree.size++
	}
	return added
}

// PutIfAbsent key不存在时才写入
func (rbTree *LLRBTree[K, V]) PutIfAbsent(key K, value V) bool {
	rbTree.rw.Lock()
	defer rbTree.rw.Unlock()

	if rbTree.find(key) != nil {
		return false
	}
	var added bool
	rbTree.root = rbTree.put(rbTree.root, key, value, &added)
	rbTree.root.color = black
	rbTree.size++
	return true
}

// 递归式的添加, 由于需要开栈、性能不如非递归版本, 但是实现相对简单
func (rbTree *LLRBTree[K, V]) put(h *llrbNode[K, V], key K, value V, added *bool) *llrbNode[K, V] {
	if h == nil {
		*added = true
		return &llrbNode[K, V]{key: key, value: value, color: red}
	}

	compare := rbTree.cmp(h.key, key)
	if compare > 0 {
		h.left = rbTree.put(h.left, key, value, added)
	} else if compare < 0 {
		h.right = rbTree.put(h.right, key, value, added)
	} else {
		h.value = value
	}

	// 自底向上
	if h.right.isRed() && !h.left.isRed() {
		h = rotateLeft(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = rotateRight(h)
	}
	if h.left.isRed() && h.right.isRed() {
		flipColor(h)
	}
	return h
}

// 左旋
func rotateLeft[K, V any](h *llrbNode[K, V]) *llrbNode[K, V] {
	right := h.right
	h.right = right.left
	right.left = h
	right.color = h.color
	h.color = red
	return right
}

// 右旋
func rotateRight[K, V any](h *llrbNode[K, V]) *llrbNode[K, V] {
	left := h.left
	h.left = left.right
	left.right = h
	left.color = h.color
	h.color = red
	return left
}

func flipColor[K, V any](h *llrbNode[K, V]) {
	h.left.color = !h.left.color
	h.right.color = !h.right.color
	h.color = !h.color
}

func (rbTree *LLRBTree[K, V]) find(key K) *llrbNode[K, V] {
	x := rbTree.root
	for x != nil {
		compare := rbTree.cmp(x.key, key)
		if compare > 0 {
			x = x.left
		} else if compare < 0 {
			x = x.right
		} else {
			return x
		}
	}
	return nil
}

// Get 获取记录
func (rbTree *LLRBTree[K, V]) Get(key K) (V, error) {
	rbTree.rw.RLock()
	defer rbTree.rw.RUnlock()

	if x := rbTree.find(key); x != nil {
		return x.value, nil
	}
	var zero V
	return zero, ErrNotFound
}

// FindGE 获取大于等于key的最小key
func (rbTree *LLRBTree[K, V]) FindGE(key K) (K, error) {
	rbTree.rw.RLock()
	defer rbTree.rw.RUnlock()

	x := rbTree.root
	var ge *llrbNode[K, V]
	for x != nil {
		compare := rbTree.cmp(x.key, key)
		if compare < 0 {
			x = x.right
		} else if compare > 0 {
			ge = x
			x = x.left
		} else {
			return x.key, nil
		}
	}

	if ge != nil {
		return ge.key, nil
	}
	var zero K
	return zero, ErrNotFound
}

// Len 获取当前树的元素个数
func (rbTree *LLRBTree[K, V]) Len() int {
	rbTree.rw.RLock()
	defer rbTree.rw.RUnlock()
	return rbTree.size
}

// Ascend 中序遍历, fn返回false时停止
// 遍历期间持有读锁, fn里不能写这棵树
func (rbTree *LLRBTree[K, V]) Ascend(fn func(key K, value V) bool) {
	rbTree.rw.RLock()
	defer rbTree.rw.RUnlock()
	rbTree.root.ascend(fn)
}

func (n *llrbNode[K, V]) ascend(fn func(key K, value V) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.ascend(fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return n.right.ascend(fn)
}

// Keys 按顺序返回所有key
func (rbTree *LLRBTree[K, V]) Keys() []K {
	keys := make([]K, 0, rbTree.Len())
	rbTree.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
