package pet_sex_enum

// 宠物性别
const (
	MALE int8 = iota // 雄性
	FEMALE
	NEUTERED_MALE // 已绝育雄性
	SPAYED_FEMALE // 已绝育雌性
)
