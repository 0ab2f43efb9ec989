package fixed

var (
	Zero = FromInt(0, 0)
	One  = FromInt(1, 0)
	Two  = FromInt(2, 0)
	Five = FromInt(5, 0)
	Ten  = FromInt(10, 0)
)
