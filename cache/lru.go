package cache

import "sync"

// lruNode lru节点
type lruNode[K comparable, V any] struct {
	key        K
	value      V
	prev, next *lruNode[K, V]
}

func (node *lruNode[K, V]) insert(at *lruNode[K, V]) {
	x := at.prev
	at.prev = node
	node.next = at
	node.prev = x
	x.next = node
}

func (node *lruNode[K, V]) remove() {
	node.prev.next = node.next
	node.next.prev = node.prev
	node.prev, node.next = nil, nil
}

// LRU 按元素个数淘汰的lru, 并发安全
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	nodes    map[K]*lruNode[K, V]
	recent   lruNode[K, V] // 哨兵, recent.prev 最新, recent.next 最旧
}

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	lru := &LRU[K, V]{
		capacity: capacity,
		nodes:    make(map[K]*lruNode[K, V], capacity),
	}
	lru.recent.next = &lru.recent
	lru.recent.prev = &lru.recent
	return lru
}

// Get 命中时把节点提升为最新
func (lru *LRU[K, V]) Get(key K) (V, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if n, ok := lru.nodes[key]; ok {
		lru.promote(n)
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetOrCreate 不存在时调用create创建并放入cache
// create在锁内执行, 同一个key只会创建一次, 所以create必须足够轻
func (lru *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if n, ok := lru.nodes[key]; ok {
		lru.promote(n)
		return n.value
	}
	v := create()
	lru.put(key, v)
	return v
}

func (lru *LRU[K, V]) Put(key K, value V) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if n, ok := lru.nodes[key]; ok {
		n.value = value
		lru.promote(n)
		return
	}
	lru.put(key, value)
}

func (lru *LRU[K, V]) put(key K, value V) {
	n := &lruNode[K, V]{key: key, value: value}
	n.insert(&lru.recent)
	lru.nodes[key] = n
	for len(lru.nodes) > lru.capacity {
		oldest := lru.recent.next
		oldest.remove()
		delete(lru.nodes, oldest.key)
	}
}

func (lru *LRU[K, V]) promote(n *lruNode[K, V]) {
	n.remove()
	n.insert(&lru.recent)
}

func (lru *LRU[K, V]) Len() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.nodes)
}

func (lru *LRU[K, V]) Capacity() int {
	return lru.capacity
}
