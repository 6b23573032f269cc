package editor

import "container/list"

// Line renders are memoized because every keystroke re-renders the whole
// document and most lines are unchanged between renders.

type renderKey struct {
	line   string
	active bool
}

type renderEntry struct {
	key   renderKey
	spans []Span
}

type lruCache struct {
	size      int
	evictList *list.List
	items     map[renderKey]*list.Element
}

func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[renderKey]*list.Element),
	}
}

func (c *lruCache) Get(key renderKey) (spans []Span, ok bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*renderEntry).spans, true
	}
	return
}

func (c *lruCache) Put(key renderKey, spans []Span) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*renderEntry).spans = spans
		return
	}

	ele := c.evictList.PushFront(&renderEntry{key, spans})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *lruCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *lruCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*renderEntry)
	delete(c.items, kv.key)
}
