package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	ListingSubmitted    string `mapstructure:"listingSubmitted" json:"listingSubmitted" yaml:"listingSubmitted"`       // 新工具提交待审核
	ListingModerated    string `mapstructure:"listingModerated" json:"listingModerated" yaml:"listingModerated"`       // 审核结果广播
	ModerationDecisions string `mapstructure:"moderationDecisions" json:"moderationDecisions" yaml:"moderationDecisions"` // 外部审核决定 (消费)
}
