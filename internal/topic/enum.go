package topic

type TopicStatus string

const (
	PUBLISHED TopicStatus = "PUBLISHED"
	DRAFT     TopicStatus = "DRAFT"
	ARCHIVED  TopicStatus = "ARCHIVED"
)

var AllStatuses = []TopicStatus{
	PUBLISHED,
	DRAFT,
	ARCHIVED,
}

func (s TopicStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
