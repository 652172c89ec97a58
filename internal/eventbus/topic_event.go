package eventbus

type TopicEventType string

const (
	TopicEventCreated      TopicEventType = "TopicCreated"
	TopicEventDirCreated   TopicEventType = "TopicDirCreated"
	TopicEventSectionAdded TopicEventType = "SectionAdded"
	TopicEventCompleted    TopicEventType = "TopicCompleted"
	TopicEventDeleted      TopicEventType = "TopicDeleted"
)

type TopicEvent struct {
	Type      TopicEventType
	TopicID   string
	Filename  string // 新建文件/小节时的落盘文件名
	Completed bool
}

type TopicEventHandler = Handler[TopicEvent]
type TopicEventBus = Bus[TopicEventType, TopicEvent]

func NewTopicEventBus() *TopicEventBus {
	return NewBus[TopicEventType, TopicEvent](func(e TopicEvent) TopicEventType { return e.Type })
}
