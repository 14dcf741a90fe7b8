package effect

import (
	"container/heap"
	"time"

	"github.com/gonewx/startrail/pkg/utils"
)

// RemovalQueue 基于时钟的延迟动作队列，实现 Scheduler
//
// Schedule 以 clock.Now()+delay 作为到期时间入队；
// 宿主每帧调用 Update(now)，按到期顺序执行所有已到期的动作，
// 到期时间相同时按入队顺序执行。
type RemovalQueue struct {
	clock utils.Clock
	items pendingHeap
	seq   uint64
}

// NewRemovalQueue 创建延迟动作队列
func NewRemovalQueue(clock utils.Clock) *RemovalQueue {
	return &RemovalQueue{clock: clock}
}

// Schedule 实现 Scheduler
func (q *RemovalQueue) Schedule(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	q.seq++
	heap.Push(&q.items, pendingAction{
		due: q.clock.Now().Add(delay),
		seq: q.seq,
		fn:  fn,
	})
}

// Update 执行所有到期时间不晚于 now 的动作，返回执行数量
// 动作内部再次调用 Schedule 是安全的
func (q *RemovalQueue) Update(now time.Time) int {
	fired := 0
	for len(q.items) > 0 && !q.items[0].due.After(now) {
		action := heap.Pop(&q.items).(pendingAction)
		action.fn()
		fired++
	}
	return fired
}

// Pending 返回尚未执行的动作数量
func (q *RemovalQueue) Pending() int {
	return len(q.items)
}

// NextDue 返回最早到期时间；队列为空时 ok 为 false
func (q *RemovalQueue) NextDue() (due time.Time, ok bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].due, true
}

type pendingAction struct {
	due time.Time
	seq uint64
	fn  func()
}

// pendingHeap 按 (due, seq) 排序的最小堆
type pendingHeap []pendingAction

func (h pendingHeap) Len() int { return len(h) }

func (h pendingHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x any) {
	*h = append(*h, x.(pendingAction))
}

func (h *pendingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = pendingAction{}
	*h = old[:n-1]
	return item
}
