package client

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/easyonboard/backend/internal/model"
)

// SyncState 定义主题在服务端与本地缓存之间的所有可能状态
type SyncState string

const (
	SyncStateSynced     SyncState = "synced"      // 两端一致
	SyncStateLocalOnly  SyncState = "local-only"  // 仅存在于本地缓存
	SyncStateRemoteOnly SyncState = "remote-only" // 仅存在于服务端
	SyncStateConflicted SyncState = "conflicted"  // 两端都有但内容分叉
)

// SyncTransition 定义同步状态迁移
type SyncTransition struct {
	From SyncState
	To   SyncState
}

// SyncStateMachine 同步状态机
type SyncStateMachine struct {
	// 定义所有合法的状态迁移
	allowedTransitions map[SyncTransition]bool
}

// NewSyncStateMachine 创建新的同步状态机
func NewSyncStateMachine() *SyncStateMachine {
	sm := &SyncStateMachine{
		allowedTransitions: make(map[SyncTransition]bool),
	}

	transitions := []SyncTransition{
		// 推送/拉取收敛
		{SyncStateLocalOnly, SyncStateSynced},  // 本地主题推送成功
		{SyncStateRemoteOnly, SyncStateSynced}, // 服务端主题拉进缓存
		{SyncStateConflicted, SyncStateSynced}, // 冲突已解决

		// 分叉
		{SyncStateSynced, SyncStateConflicted},     // 两端各自修改
		{SyncStateLocalOnly, SyncStateConflicted},  // 服务端出现同 id 的不同内容
		{SyncStateRemoteOnly, SyncStateConflicted}, // 缓存出现同 id 的不同内容

		// 单侧删除
		{SyncStateSynced, SyncStateLocalOnly},  // 服务端删除，缓存尚存
		{SyncStateSynced, SyncStateRemoteOnly}, // 缓存清理，服务端尚存
	}

	for _, t := range transitions {
		sm.allowedTransitions[t] = true
	}

	return sm
}

// CanTransition 检查状态迁移是否合法
func (sm *SyncStateMachine) CanTransition(from, to SyncState) bool {
	if from == to {
		return false // 不允许状态不变
	}
	return sm.allowedTransitions[SyncTransition{From: from, To: to}]
}

// ValidateTransition 验证状态迁移并返回错误
func (sm *SyncStateMachine) ValidateTransition(from, to SyncState) error {
	if !sm.CanTransition(from, to) {
		return &InvalidSyncTransitionError{From: string(from), To: string(to)}
	}
	return nil
}

// Transition 执行状态迁移（带日志）
func (sm *SyncStateMachine) Transition(from, to SyncState, topicID string) error {
	if err := sm.ValidateTransition(from, to); err != nil {
		klog.V(6).Infof("同步状态迁移被拒绝: topicID=%s, %s -> %s, error=%v", topicID, from, to, err)
		return err
	}
	klog.V(6).Infof("同步状态迁移成功: topicID=%s, %s -> %s", topicID, from, to)
	return nil
}

// InvalidSyncTransitionError 无效的同步状态迁移错误
type InvalidSyncTransitionError struct {
	From string
	To   string
}

func (e *InvalidSyncTransitionError) Error() string {
	return fmt.Sprintf("invalid sync state transition: %s -> %s", e.From, e.To)
}

// Reconcile 对比服务端列表与本地缓存，推导每个主题的同步状态
// 两端都有时按完成状态与正文判断是否分叉
func Reconcile(remote, cached []model.Topic) map[string]SyncState {
	states := make(map[string]SyncState, len(remote)+len(cached))

	remoteByID := make(map[string]model.Topic, len(remote))
	for _, topic := range remote {
		remoteByID[topic.ID] = topic
	}

	for _, local := range cached {
		r, ok := remoteByID[local.ID]
		switch {
		case !ok:
			states[local.ID] = SyncStateLocalOnly
		case r.Completed != local.Completed || r.Content != local.Content:
			states[local.ID] = SyncStateConflicted
		default:
			states[local.ID] = SyncStateSynced
		}
	}

	for _, topic := range remote {
		if _, seen := states[topic.ID]; !seen {
			states[topic.ID] = SyncStateRemoteOnly
		}
	}

	return states
}
