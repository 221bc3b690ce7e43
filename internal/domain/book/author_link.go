package book

// AuthorLink 图书与作者的有序关联
// 同一本书的全部关联中Order恰好为0..n-1，按Order排序即为作者署名顺序
type AuthorLink struct {
	AuthorID   uint
	BookID     uint
	Order      int
	AuthorName string // 只读：查询图书详情时填充
}

// AssignOrder 按切片位置为关联编号：links[i].Order = i
// 原地修改并返回同一个切片；nil输入返回nil。
// 不做去重，同一作者出现两次会得到两个不同编号的关联，去重由调用方负责
func AssignOrder(links []AuthorLink) []AuthorLink {
	for i := range links {
		links[i].Order = i
	}
	return links
}

// NewAuthorLinks 按authorIDs的提交顺序构建关联并编号
func NewAuthorLinks(bookID uint, authorIDs []uint) []AuthorLink {
	if authorIDs == nil {
		return nil
	}

	links := make([]AuthorLink, len(authorIDs))
	for i, id := range authorIDs {
		links[i] = AuthorLink{AuthorID: id, BookID: bookID}
	}
	return AssignOrder(links)
}

// AuthorIDs 按关联当前顺序返回作者ID
func AuthorIDs(links []AuthorLink) []uint {
	ids := make([]uint, len(links))
	for i, l := range links {
		ids[i] = l.AuthorID
	}
	return ids
}
